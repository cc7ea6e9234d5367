package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, config errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing ids, missing update fields, or invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	// Use for: Boutique, client, subscription or reminder ids that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Input that cannot be parsed, such as a non-numeric price.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Any input that fails the field rules of its entity.
	ExitValidation = 5

	// ExitUnauthenticated indicates no operator is signed in.
	// Use for: Entity commands run before `atelier login`, or rejected credentials.
	ExitUnauthenticated = 6
)
