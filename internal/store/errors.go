package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers match against these values with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when registering a new user fails
	// because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrActionNotFound is returned when a query or mutation targets an
	// action that does not exist or is not owned by the requesting user.
	// The two cases are deliberately indistinguishable so that foreign ids
	// cannot be probed.
	ErrActionNotFound = errors.New("action not found")

	// ErrActionCompleted is returned when positive progress is recorded
	// against an action whose completed flag is already set.
	ErrActionCompleted = errors.New("cannot add progress to completed action")

	// ErrAlreadyAtMaximum is returned when the effective progress delta
	// after clamping is not positive: the action already sits at its target.
	ErrAlreadyAtMaximum = errors.New("action already at maximum progress")

	// ErrAlreadyAtMinimum is returned when a decrement targets an action
	// whose current count is already zero.
	ErrAlreadyAtMinimum = errors.New("action already at minimum progress")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when a failure is detected during
	// multi-row iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
