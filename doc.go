// Package main is the entry point of the randstr command line tool.
// It prints random strings sampled from a configurable alphabet and can keep a
// ledger of issued strings so none is handed out twice.
package main
