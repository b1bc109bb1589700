package validation

import (
	"fmt"
	"strings"
)

const (
	MinThreads = 1
	MaxThreads = 20
)

func ValidateThreadCount(threads int) error {
	if threads < MinThreads || threads > MaxThreads {
		return fmt.Errorf("thread count must be between %d and %d, got %d", MinThreads, MaxThreads, threads)
	}
	return nil
}

func ValidateNonEmptyString(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateCredentials checks that both login fields are present.
func ValidateCredentials(emailOrUsername, password string) error {
	if err := ValidateNonEmptyString("email or username", emailOrUsername); err != nil {
		return err
	}
	return ValidateNonEmptyString("password", password)
}

func ValidateMethod(method string) error {
	validMethods := map[string]bool{
		"GET":    true,
		"POST":   true,
		"PUT":    true,
		"PATCH":  true,
		"DELETE": true,
	}
	if !validMethods[strings.ToUpper(method)] {
		return fmt.Errorf("invalid HTTP method: %s (must be one of: GET, POST, PUT, PATCH, DELETE)", method)
	}
	return nil
}

func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if !strings.HasPrefix(endpoint, "/") {
		return fmt.Errorf("endpoint must start with a slash, got %s", endpoint)
	}
	return nil
}
