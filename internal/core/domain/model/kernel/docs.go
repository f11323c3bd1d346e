// Package kernel holds the value objects shared by the shipment, consignment
// and complaint models.
//
//   - UUID: identifier for aggregates, wrapping github.com/google/uuid
//   - Contact: an immutable postal/phone contact (shipment destination)
//   - Weight: a parcel weight parsed leniently from the text a host record holds
//
// All of them are immutable and must be created through their constructors.
package kernel
