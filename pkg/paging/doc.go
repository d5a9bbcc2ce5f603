// Package paging models the {data, pagination} envelope returned by the
// Fuzion contracts' list queries and walks the pages that follow a first
// response.
package paging
