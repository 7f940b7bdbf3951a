// Package middleware groups the Fiber middleware mounted in front of the soul gem
// endpoints by the start command.
//
// # Components
//
//   - auth: compares the X-API-Key header with the configured server key in
//     constant time and answers 401 with {"error": "invalid api key"} on a
//     mismatch. An empty configured key turns the check off.
//   - rayid: tags each request with an id, reusing an incoming X-Ray-ID header or
//     generating a UUID. The id is echoed in the X-Ray-ID response header and
//     stored under the "ray_id" locals key, where logger.WithRayID picks it up.
//
// start registers rayid first so that request logs and auth failures carry the id.
package middleware
