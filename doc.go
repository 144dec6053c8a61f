/*
Package anxiety implements a two-class block device I/O scheduler in pure Go. It
batches latency-sensitive sync requests against background async requests under a
tunable ratio, so that neither traffic class can starve the other.
*/
package anxiety
