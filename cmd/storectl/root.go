package main

import (
	"context"
	"fmt"
	"time"

	mongoadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/mongo"
	redisadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/redis"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
)

const commandTimeout = 2 * time.Minute

// settings are read through viper so flags override the server's env vars.
type settings struct {
	MongoURI      string
	MongoUser     string
	MongoPassword string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	BaseURL       string
	LogLevel      string
}

func loadSettings(v *viper.Viper) settings {
	return settings{
		MongoURI:      v.GetString("mongo_uri"),
		MongoUser:     v.GetString("mongo_user"),
		MongoPassword: v.GetString("mongo_password"),
		MongoDatabase: v.GetString("mongo_database"),
		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		CacheTTL:      v.GetDuration("catalog_cache_ttl"),
		BaseURL:       v.GetString("site_base_url"),
		LogLevel:      v.GetString("log_level"),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "storefront_db")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("catalog_cache_ttl", 5*time.Minute)
	v.SetDefault("site_base_url", "https://rdm.bz")
	v.SetDefault("log_level", "warn")
	v.AutomaticEnv()
	return v
}

func newRootCmd() *cobra.Command {
	v := newViper()

	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Storefront maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return v.BindPFlags(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.String("mongo_uri", "", "MongoDB connection URI (env MONGO_URI)")
	pf.String("mongo_database", "", "MongoDB database name (env MONGO_DATABASE)")
	pf.String("redis_addr", "", "Redis address for catalog cache invalidation (env REDIS_ADDR)")
	pf.String("log_level", "", "log level (env LOG_LEVEL)")

	root.AddCommand(
		newMigrateCmd(v),
		newImportCmd(v),
		newSitemapCmd(v),
		newHashPasswordCmd(),
	)
	return root
}

type store struct {
	log   logger.Logger
	mongo *mongo.Client
	db    *mongo.Database
	redis *redis.Client
}

func openStore(ctx context.Context, s settings, withCache bool) (*store, error) {
	log := logger.New(logger.Config{Level: s.LogLevel, Encoding: "console"})

	client, err := mongoadapter.NewClient(ctx, config.MongoDBConfig{
		URI:      s.MongoURI,
		User:     s.MongoUser,
		Password: s.MongoPassword,
		Database: s.MongoDatabase,
	})
	if err != nil {
		return nil, err
	}
	st := &store{log: log, mongo: client, db: client.Database(s.MongoDatabase)}

	if withCache && s.RedisAddr != "" {
		rc, err := redisadapter.NewClient(ctx, config.RedisConfig{Addr: s.RedisAddr, Password: s.RedisPassword, DB: s.RedisDB})
		if err != nil {
			log.Warnf("Redis unavailable, catalog cache will expire on its own: %v", err)
		} else {
			st.redis = rc
		}
	}
	return st, nil
}

// catalogCache is nil when Redis was not reached.
func (st *store) catalogCache(ttl time.Duration) repository.CatalogCache {
	if st.redis == nil {
		return nil
	}
	return redisadapter.NewCatalogCache(st.redis, ttl)
}

func (st *store) Close(ctx context.Context) {
	if st.redis != nil {
		_ = st.redis.Close()
	}
	if err := st.mongo.Disconnect(ctx); err != nil {
		st.log.Warnf("Error disconnecting from MongoDB: %v", err)
	}
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), commandTimeout)
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
