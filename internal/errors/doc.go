// Package errors defines the failure kinds of the configuration bootstrap
// and maps them to process exit codes.
//
// Every bootstrap failure is a *SetupError carrying one Kind:
//
//	InvalidThreshold    the risk threshold was not a digit string in [0,6]
//	CredentialRejected  the API key failed its verification round trip
//	StoreUnwritable     the configuration file could not be written
//
// The entry point extracts the exit code with ExitCode:
//
//	if err != nil {
//	    os.Exit(errors.ExitCode(err))
//	}
package errors
