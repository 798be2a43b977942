package errs

import "errors"

// Sentinel errors shared by the usecase layers. The three groups mirror
// the platform's error taxonomy: validation, unresolvable references, and
// missing operation targets.
var (
	// Catalog
	ErrInvalidPackageSpec   = errors.New("invalid package specification")
	ErrPackageAlreadyExists = errors.New("package already exists")
	ErrPackageNotFound      = errors.New("package not found")

	// Customers
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Bookings
	ErrBookingNotFound = errors.New("booking not found")
	ErrEmptyItinerary  = errors.New("itinerary requires at least one hotel")

	// Bundles
	ErrBundleNotFound       = errors.New("bundle not found")
	ErrEmptyBundleSelection = errors.New("bundle selection is empty")

	// Ingestion
	ErrUnknownDatatype = errors.New("unknown ingestion datatype")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
