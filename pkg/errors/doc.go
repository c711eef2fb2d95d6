// Package errors defines the error types helmetscan commands raise and
// the formatting used to present them.
//
// Every failure mode the CLI can hit maps onto one of these types:
//   - ExitError: Command exit with specific exit code
//   - FetchError: Dataset download failures (transport or HTTP status)
//   - ParseError: Dataset payloads that could not become records
//   - ValidationError: Configuration, criteria, or output format failures
//
// Error Display:
//
// Commands format failures through one function so text and hints stay
// uniform:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Error Checking:
//
// The Is* helpers unwrap and type-check in one call:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Scripts can branch on the exit code:
//   - ExitSuccess (0): Query completed, including zero matches and interrupts
//   - ExitFailure (1): Dataset could not be fetched or parsed
//   - ExitValidationError (2): Invalid criteria, output format, or config
package errors
