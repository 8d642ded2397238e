// Package api exposes the feed library over HTTP for development and
// debugging. It is built with Huma on a chi router; the OpenAPI document is
// served at /openapi.json and interactive docs at /docs.
package api
