// Package framework contains the low-level implementation of test harness infrastructure
// that does not depend on what is being tested.
//
// The general model is:
//
// 1. The test harness knows the base URL of an external service under test and the HTTP
// client to reach it with. It checks that the service is reachable before any test runs.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. A test can be declared to cover a known defect, in which case
// its failure is reported separately instead of failing the run.
//
// The domain-specific code that knows what is being tested is responsible for building
// requests, and for providing a domain-specific test API on top of the test context.
package framework
