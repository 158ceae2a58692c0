// Package uaid parses HCS-14 Universal Agent IDs.
//
// A UAID names an agent across registries and protocols:
//
//	uaid:aid:<identifier>;uid=<uid>;registry=<registry>;proto=<protocol>
//	uaid:did:<method-specific-id>;proto=<protocol>
//
// Routing parameters are percent-decoded. The canonical form orders the
// well-known parameters first and the remainder alphabetically.
//
// HCS-14 standard: https://hol.org/docs/standards/hcs-14
package uaid
