// Package reactor wraps the Fuzion reactor swap contract: admin handover,
// fund deposits with unbond/withdraw/claim, and token deposits and claims.
package reactor
