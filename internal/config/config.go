package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultSubreddits is the short development list of target subreddits.
var DefaultSubreddits = []string{
	"technology",
	"MachineLearning",
	"programming",
	"science",
	"datascience",
}

// FullSubredditList is the static production list of target subreddits.
var FullSubredditList = []string{
	// Technology & Programming
	"technology", "programming", "MachineLearning", "datascience", "artificial",
	"Python", "javascript", "webdev", "cybersecurity", "tech",

	// Science & Education
	"science", "AskScience", "math", "Physics", "chemistry",
	"biology", "space", "Futurology", "todayilearned", "explainlikeimfive",

	// News & Current Events
	"news", "worldnews", "politics", "Economics", "business",

	// Entertainment & Culture
	"movies", "television", "gaming", "music", "books",
	"art", "photography", "videos", "funny", "memes",

	// Lifestyle & Hobbies
	"fitness", "food", "cooking", "travel", "DIY",
	"personalfinance", "investing", "entrepreneur", "GetMotivated", "LifeProTips",

	// Discussion & Community
	"AskReddit", "IAmA", "bestof", "OutOfTheLoop", "changemyview",
}

// Config holds all application configuration
type Config struct {
	Reddit RedditConfig `mapstructure:"reddit"`
	Fetch  FetchConfig  `mapstructure:"fetch"`
	Server ServerConfig `mapstructure:"server"`
}

// RedditConfig holds Reddit API credentials and client settings
type RedditConfig struct {
	ClientID       string        `mapstructure:"client_id"`
	ClientSecret   string        `mapstructure:"client_secret"`
	UserAgent      string        `mapstructure:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// FetchConfig holds the data collection settings
type FetchConfig struct {
	// Number of hot posts to fetch per subreddit
	PostsPerSubreddit int `mapstructure:"posts_per_subreddit"`

	// Number of comments to fetch per post
	CommentsPerPost int `mapstructure:"comments_per_post"`

	// Whether to use the development subreddit list or the full list
	UseDevelopmentList bool `mapstructure:"use_development_list"`

	// Whether to discover popular subreddits dynamically instead of
	// using the static list
	UseDynamicDiscovery bool `mapstructure:"use_dynamic_discovery"`

	// Number of subreddits to fetch when using dynamic discovery
	DynamicSubredditCount int `mapstructure:"dynamic_subreddit_count"`

	// Delay between subreddit requests to respect rate limits
	RequestDelay time.Duration `mapstructure:"request_delay"`

	// Maximum retries for failed requests. Declared for operators but
	// not enforced by the fetcher; retry behavior is left to the client.
	MaxRetries int `mapstructure:"max_retries"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads configuration from config.yaml and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	viper.SetDefault("fetch.posts_per_subreddit", 25)
	viper.SetDefault("fetch.comments_per_post", 50)
	viper.SetDefault("fetch.use_development_list", true)
	viper.SetDefault("fetch.use_dynamic_discovery", true)
	viper.SetDefault("fetch.dynamic_subreddit_count", 50)
	viper.SetDefault("fetch.request_delay", "1s")
	viper.SetDefault("fetch.max_retries", 3)
	viper.SetDefault("reddit.request_timeout", "30s")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Environment variable bindings
	viper.AutomaticEnv()
	viper.BindEnv("reddit.client_id", "REDDIT_CLIENT_ID", "CLIENT_ID")
	viper.BindEnv("reddit.client_secret", "REDDIT_CLIENT_SECRET", "CLIENT_SECRET")
	viper.BindEnv("reddit.user_agent", "REDDIT_USER_AGENT", "USER_AGENT")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the required Reddit API credentials are present.
// A missing credential aborts the run before any network activity.
func (c *Config) Validate() error {
	if c.Reddit.ClientID == "" {
		return fmt.Errorf("REDDIT_CLIENT_ID is required")
	}
	if c.Reddit.ClientSecret == "" {
		return fmt.Errorf("REDDIT_CLIENT_SECRET is required")
	}
	if c.Reddit.UserAgent == "" {
		return fmt.Errorf("REDDIT_USER_AGENT is required")
	}
	return nil
}

// StaticList returns the configured static subreddit list, preserving
// order and duplicates.
func (c *Config) StaticList() []string {
	var src []string
	if c.Fetch.UseDevelopmentList {
		src = DefaultSubreddits
	} else {
		src = FullSubredditList
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
