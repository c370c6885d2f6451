// Package mail defines the contracts for selecting and using an email sender.
//
// Callers work with the Sender capability and the Mailer that wraps it. A Sender
// is picked by service key through a Resolver: the Locator hands out shared,
// pre-built senders while the Factory builds a new one per lookup. Both fall
// back to the Mock sender for keys they do not know.
//
// Senders only report what they would deliver; none of them talks to a mail
// server.
package mail
