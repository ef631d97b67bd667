/*
Package x contains the interfaces shared by the wallet extensions.

Extensions live in subpackages of x. x/multisig is the wallet itself,
x/cash keeps the wallet holdings and x/sigs authenticates callers. The
interfaces declared here let them be combined without importing each other:
an Authenticator tells who is calling, an Effect carries out an executed
transaction and an Observer is told about every committed operation.
*/
package x
