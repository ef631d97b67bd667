/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* Models are protobuf messages that can validate themselves.
* Sequences generate dense, ordered keys for a bucket.
*/
package orm
