// Package fixtures provides shared test data constants for the test suite.
//
// The package holds plain strings only, so the errors and result packages
// can use it from their own in-package tests without an import cycle.
package fixtures

// Signup validation scenario used by the collection, builder and rpc tests.
const (
	// UsernameField is the field name for the username check.
	UsernameField = "username"

	// UsernameRequired is the message recorded for a missing username.
	UsernameRequired = "Username is required"

	// PasswordField is the field name for the password check.
	PasswordField = "password"

	// PasswordTooShort is the message recorded for a short password.
	PasswordTooShort = "Password too short"

	// SignupSummary is the summary of the two signup failures above.
	SignupSummary = "username: Username is required; password: Password too short"
)

// Lookup scenario: a permanent and a transient failure.
const (
	// NotFoundCode is the code of the permanent lookup failure.
	NotFoundCode = "not_found"

	// NotFoundMessage is the message of the permanent lookup failure.
	NotFoundMessage = "User not found"

	// TimeoutCode is the code of the transient lookup failure.
	TimeoutCode = "timeout"

	// TimeoutMessage is the message of the transient lookup failure.
	TimeoutMessage = "Service unavailable"

	// LookupSummary is the summary of both lookup failures.
	LookupSummary = "not_found: User not found; timeout: Service unavailable"
)

// Standard configuration values used in config loader tests.
const (
	// TestConfigYAML is a minimal valid YAML configuration for tests.
	TestConfigYAML = `host: db.internal
port: 5432
debug: true
`

	// TestConfigJSON is the JSON equivalent of TestConfigYAML.
	TestConfigJSON = `{
  "host": "db.internal",
  "port": 5432,
  "debug": true
}`
)
