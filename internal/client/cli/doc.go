// Package cli implements orgctl, a one-shot command-line client for the org
// chart API.
//
// Commands:
//
//	register                        create an account and print its token
//	login                           log in and print a fresh token
//	ping                            check that the server answers
//	photo-upload <person-id> <file> upload a person's photo (needs -t)
//	photo-download <person-id>      save a person's photo under ./photos (needs -t)
//
// Passwords are read from the terminal without echo.
package cli
