/*
Package errors implements the error kinds shared by all quorum packages.

Reuse the root errors declared here whenever possible and register a custom
kind only when the failure is specific to an extension. x/multisig is a good
package to look at for custom kinds and for errors carrying extra data.

Register(code, description) declares a new root error. Use ErrXyz.New/Newf or
Wrap/Wrapf at the point where the failure happens so that a stack trace is
attached. Only the innermost wrap records the stack trace.

Once you have an error, fmt verbs give you more context:
	%s is just the error message
	%+v is the message followed by the full stack trace
*/
package errors
