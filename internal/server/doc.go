// Package server runs the selected front-end of the unit dispatcher.
//
// In HTTP mode it serves the chi router until SIGTERM, SIGINT or SIGQUIT and
// then shuts down gracefully. In Lambda mode it hands the handler to the AWS
// Lambda runtime, which owns the process until the sandbox is terminated.
package server
