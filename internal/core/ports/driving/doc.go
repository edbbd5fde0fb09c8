// Package driving defines the interfaces through which the outside
// world drives the core (driving ports). The CLI adapter consumes
// them.
package driving
