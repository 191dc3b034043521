package domain

// Error codes surfaced by the service.
const (
	// CodeUsernameTaken is returned when registering with a username that
	// already belongs to another principal.
	CodeUsernameTaken = "USERNAME_TAKEN"

	// CodeInvalidCredentials is returned for any failed authentication.
	// A single code covers both unknown username and wrong secret so that
	// responses do not leak username existence.
	CodeInvalidCredentials = "INVALID_CREDENTIALS"

	// CodeUserNotFound is returned when no principal exists for the given ID.
	CodeUserNotFound = "USER_NOT_FOUND"

	// CodeBucketProvisioningFailed is returned when the storage backend
	// could not create a principal's bucket.
	CodeBucketProvisioningFailed = "BUCKET_PROVISIONING_FAILED"
)
