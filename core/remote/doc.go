// Package remote implements the read-only client for the upstream SRD
// reference API.
//
// The API exposes one index endpoint per resource (GET /api/<resource>,
// returning a list of {index, name, url} references) and one detail endpoint
// per item (GET <url>, returning the full document). Detail documents for
// complex resources embed further relative URLs (a class's level table, a
// class's spell list) which are fetched with Refs or GetList.
//
// The client is a pure I/O boundary: no retries, no caching, no business
// logic. Transport failures and non-2xx statuses surface as ErrUnavailable;
// bodies that do not decode into the expected shape surface as ErrMalformed.
package remote
