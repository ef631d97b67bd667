/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Every package owns a single configuration record, stored under the "_c:<pkg>"
key. A record is a protobuf message that validates itself before it is
written. Records are usually created once, from the genesis options, and only
read afterwards.

*/
package gconf
