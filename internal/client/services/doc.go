// Package services contains the application services behind the neatdog
// terminal client: authentication, packs, the pack's dog and its activity
// log.
//
// Services validate user input before anything is sent, call the API
// through the session-bound transport, and end the session when the server
// answers 401 to a domain call.
package services
