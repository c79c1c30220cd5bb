// Package openapi imports OpenAPI 3 request-body schemas as element trees so
// authored forms can be seeded from an existing API contract. The importer
// keeps kin-openapi types out of the public surface; callers hand in raw
// document bytes and receive a plain element tree.
package openapi
