package config

import (
	"fmt"
	"strings"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
)

// MakeConnStr builds a key/value PostgreSQL connection string, resolving
// the secret references of the database section.
func MakeConnStr(conf Database) (string, error) {
	host, err := commoncfg.LoadValueFromSourceRef(conf.Host)
	if err != nil {
		return "", fmt.Errorf("loading db host: %w", err)
	}

	user, err := commoncfg.LoadValueFromSourceRef(conf.User)
	if err != nil {
		return "", fmt.Errorf("loading db user: %w", err)
	}

	password, err := commoncfg.LoadValueFromSourceRef(conf.Password)
	if err != nil {
		return "", fmt.Errorf("loading db password: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "host=%s user=%s password=%s dbname=%s port=%s",
		host, user, string(password), conf.Name, conf.Port)
	if conf.SSLMode != "" {
		fmt.Fprintf(&b, " sslmode=%s", conf.SSLMode)
	}

	return b.String(), nil
}

// ValKeyCredentials are the resolved connection values of the valkey section.
type ValKeyCredentials struct {
	Address  string
	Username string
	Password string
}

func LoadValKeyCredentials(conf ValKey) (ValKeyCredentials, error) {
	host, err := commoncfg.LoadValueFromSourceRef(conf.Host)
	if err != nil {
		return ValKeyCredentials{}, fmt.Errorf("loading valkey host: %w", err)
	}

	username, err := commoncfg.LoadValueFromSourceRef(conf.User)
	if err != nil {
		return ValKeyCredentials{}, fmt.Errorf("loading valkey username: %w", err)
	}

	password, err := commoncfg.LoadValueFromSourceRef(conf.Password)
	if err != nil {
		return ValKeyCredentials{}, fmt.Errorf("loading valkey password: %w", err)
	}

	return ValKeyCredentials{
		Address:  string(host),
		Username: string(username),
		Password: string(password),
	}, nil
}
