// Package favtests contains the contract tests for the create-favorite endpoint and their
// supporting API.
//
// Test harness infrastructure that is not specific to this endpoint, such as the test context,
// filtering and result reporting, is in the lower-level framework package. Requests are built
// and sent by the placeapi package, and the cases come from the spectable package.
package favtests
