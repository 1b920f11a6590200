package config

import "os"

// Environment variable names read at startup.
const (
	EnvBaseURL    = "MOVARY_BASE_URL"
	EnvClientName = "MOVARY_CLIENT"
	EnvEmail      = "MOVARY_EMAIL"
	EnvPassword   = "MOVARY_PASSWORD"
	EnvUserID     = "MOVARY_USER_ID"
	EnvPort       = "PORT"
	EnvNextDT     = "NEXT_DT"
)

const defaultPort = "8080"

// Settings holds everything the application reads from the process
// environment. It is built once at startup and passed by reference;
// nothing mutates it afterwards.
type Settings struct {
	BaseURL     string
	ClientName  string
	Email       string
	Password    string
	UserID      string
	ListenPort  string
	NextShowing string
}

// FromEnv reads Settings from the process environment. Missing required
// variables do not abort startup; callers surface them via MissingRequired
// and the page degrades to its no-data state.
func FromEnv() *Settings {
	return &Settings{
		BaseURL:     os.Getenv(EnvBaseURL),
		ClientName:  os.Getenv(EnvClientName),
		Email:       os.Getenv(EnvEmail),
		Password:    os.Getenv(EnvPassword),
		UserID:      os.Getenv(EnvUserID),
		ListenPort:  envOr(EnvPort, defaultPort),
		NextShowing: os.Getenv(EnvNextDT),
	}
}

// MissingRequired lists required environment variables that were unset or
// empty, in a stable order, for startup warnings. NEXT_DT and PORT are
// optional and never reported.
func (s *Settings) MissingRequired() []string {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{EnvBaseURL, s.BaseURL},
		{EnvClientName, s.ClientName},
		{EnvEmail, s.Email},
		{EnvPassword, s.Password},
		{EnvUserID, s.UserID},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
