// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lifecycle runs the HTTP server and stops it from the console.

A Controller moves through three states: Starting, Running and Stopped.
Once listening it prints the server address and a prompt, then reads
standard input line by line:

	ctrl := lifecycle.New(mux, store, cfg, os.Stdin, os.Stdout)
	err := ctrl.Run(ctx)

Typing "stop" (any case) or cancelling ctx shuts the listener down within
the configured timeout, closes the input when it is an io.Closer and
closes the store. Other lines re-print the prompt. End of input leaves
the server running.
*/
package lifecycle
