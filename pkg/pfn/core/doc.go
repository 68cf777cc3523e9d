// Package core contains the plumbing for evaluating partial functions over
// channels: channel helpers, worker configuration via context, and the
// locomotive that drives workers. It does not know about partial functions;
// packages like lite and router plug their evaluation into it.
package core
