// Package setup runs the first-run configuration bootstrap.
//
// Two values are configured independently, API key first:
//
//	OpenAI_API_Key  prompted, verified with one live request, persisted
//	Command_Risk    prompted, validated as an integer in [0,6], persisted
//
// Each value moves through
//
//	Unset -> Prompted -> Validated -> Persisted
//	Unset -> Prompted -> Rejected  -> Terminated
//
// or straight to AlreadyConfigured when its key is in the file. A value that
// is already present is never prompted for or re-validated. Rejections are
// reported to the user and returned as *errors.SetupError; the caller
// decides how to exit.
package setup
