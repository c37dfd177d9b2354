package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// 環境変数のプレフィックス（SHOPHUB_API_BASEURL → api.baseURL）
	EnvPrefix = "SHOPHUB_"

	// --config が無いときに探すファイル
	DefaultFile = "storefront.yaml"
)

// 保存先ドライバ
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Configはアプリ全体の設定
type Config struct {
	Env      string   `koanf:"env"` // dev/prod
	Log      Log      `koanf:"log"`
	API      API      `koanf:"api"`
	Storage  Storage  `koanf:"storage"`
	Checkout Checkout `koanf:"checkout"`
}

type Log struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

type API struct {
	BaseURL string        `koanf:"baseURL"` // 例: http://localhost:5000/api
	Timeout time.Duration `koanf:"timeout"`
	Tracing bool          `koanf:"tracing"` // otelhttpで計装する
}

// カート・ユーザー・トークンの保存先
type Storage struct {
	Driver    string `koanf:"driver"`    // memory/file/redis/postgres
	Dir       string `koanf:"dir"`       // file
	Namespace string `koanf:"namespace"` // redis/postgresのキー接頭辞

	RedisAddr     string `koanf:"redisAddr"`
	RedisPassword string `koanf:"redisPassword"`
	RedisDB       int    `koanf:"redisDB"`

	DatabaseURL string `koanf:"databaseURL"`
}

type Checkout struct {
	PromoDelay  time.Duration `koanf:"promoDelay"`  // プロモコード検証の待ち時間
	SubmitDelay time.Duration `koanf:"submitDelay"` // 注文送信前の待ち時間
}

// 初期値
func Default() *Config {
	dir := ".shophub"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".shophub")
	}

	return &Config{
		Env: "dev",
		Log: Log{Level: "info"},
		API: API{
			BaseURL: "http://localhost:5000/api",
			Timeout: 10 * time.Second,
		},
		Storage: Storage{
			Driver:    StorageFile,
			Dir:       dir,
			Namespace: "shophub",
			RedisAddr: "localhost:6379",
		},
		Checkout: Checkout{
			PromoDelay:  time.Second,
			SubmitDelay: 2 * time.Second,
		},
	}
}

// Loadは .env → YAML → 環境変数 の順に読み込む。
// pathが空ならカレントの storefront.yaml を（あれば）使う。
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	k := koanf.New(".")

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKey(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// 必須チェック
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.baseURL is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be > 0")
	}
	if c.Checkout.PromoDelay < 0 || c.Checkout.SubmitDelay < 0 {
		return errors.New("checkout delays must be >= 0")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageFile:
		if c.Storage.Dir == "" {
			return errors.New("storage.dir is required")
		}
	case StorageRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New("storage.redisAddr is required")
		}
	case StoragePostgres:
		if c.Storage.DatabaseURL == "" {
			return errors.New("storage.databaseURL is required")
		}
	default:
		return errors.Errorf("unknown storage.driver: %s", c.Storage.Driver)
	}
	return nil
}

// envKeyは API_BASEURL や STORAGE_REDIS_ADDR を Config の koanfタグ（api.baseURL, storage.redisAddr）に合わせる。
// タグに無いキーは "." でつないで返す。
func envKey(raw string) string {
	var segs []string
	for _, seg := range strings.Split(strings.ToLower(raw), "_") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return strings.Join(resolveKey(reflect.TypeOf(Config{}), segs), ".")
}

// 先頭から長い順にセグメントをつないでフィールドのタグと照合する
func resolveKey(t reflect.Type, segs []string) []string {
	if len(segs) == 0 {
		return nil
	}
	if t.Kind() == reflect.Struct {
		for n := len(segs); n > 0; n-- {
			name := strings.Join(segs[:n], "")
			for i := 0; i < t.NumField(); i++ {
				f := t.Field(i)
				tag := f.Tag.Get("koanf")
				if tag != "" && strings.ToLower(tag) == name {
					return append([]string{tag}, resolveKey(f.Type, segs[n:])...)
				}
			}
		}
	}
	return segs
}
