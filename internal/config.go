package internal

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,default=12345" validate:"gte=1,lte=65535"`
	UsersFile         string        `env:"USERS_FILE,default=users.txt" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=30s"`
	CensoredWordsFile string        `env:"CENSORED_WORDS_FILE"`
	CensoredChar      string        `env:"CENSORED_CHAR,default=*"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// CharacterRune enforces that the configured replacement is one character.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSORED_CHAR must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
