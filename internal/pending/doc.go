// Package pending models the pending-work checks a scan can request, the findings they
// produce, and the streaming reporter that prints findings as they are discovered.
package pending
