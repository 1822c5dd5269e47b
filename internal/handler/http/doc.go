// Package http implements the HTTP front-end of the unit dispatcher.
//
// It is used for local development and container deployments. Requests are
// traced, access-logged and handed to the units pipeline; responses use the
// same success and failure bodies as the Lambda front-end.
package http
