// Package pdok defines the public types, configuration, and error model for
// the PDOK geodata clients.
//
// PDOK (Publieke Dienstverlening Op de Kaart) publishes the Dutch national
// geodata registries. This module wraps three of its read-only APIs:
//
//   - the locatieserver address lookup service (LookupClient)
//   - the BAG buildings registry, individuele bevragingen v2 (BagClient)
//   - the BRK cadastral map WFS (BrkClient)
//
// Clients are constructed through github.com/tweedegolf/pdok-apis/pkg/pdokclient.
package pdok
