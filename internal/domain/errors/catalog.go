package errors

// Input
var (
	ErrValidationFailed      = define(KindInvalidArgument, "VALIDATION_FAILED", "input validation failed")
	ErrInvalidCoordinates    = define(KindInvalidArgument, "INVALID_COORDINATES", "longitude/latitude are not valid WGS84 coordinates")
	ErrInvalidAttachment     = define(KindInvalidArgument, "INVALID_ATTACHMENT", "attachment rejected")
	ErrInvalidSearchCriteria = define(KindInvalidArgument, "INVALID_SEARCH_CRITERIA", "invalid search criteria")
)

// Lookup
var (
	ErrAdvertisementNotFound = define(KindNotFound, "ADVERTISEMENT_NOT_FOUND", "advertisement not found")
	ErrReferenceNotFound     = define(KindNotFound, "REFERENCE_NOT_FOUND", "referenced entity not found")
	ErrAttachmentNotFound    = define(KindNotFound, "ATTACHMENT_NOT_FOUND", "attachment not found")
)

// Uniqueness and referential integrity
var (
	ErrAdvertisementConflict = define(KindConflict, "ADVERTISEMENT_CONFLICT", "advertisement violates a uniqueness constraint")
	ErrReferenceConflict     = define(KindConflict, "REFERENCE_CONFLICT", "reference entity violates a uniqueness constraint")
	ErrReferenceInUse        = define(KindConflict, "REFERENCE_IN_USE", "referenced entity is still in use")
)

// Authentication and authorization
var (
	ErrUnauthenticated                 = define(KindUnauthorized, "UNAUTHENTICATED", "authentication required")
	ErrAdvertisementOwnershipViolation = forbidden("ADVERTISEMENT_OWNERSHIP_VIOLATION", "you are not the owner of this advertisement")
	ErrForbidden                       = forbidden("FORBIDDEN", "access denied")
)

var ErrInternalError = define(KindServerError, "INTERNAL_ERROR", "internal server error")
