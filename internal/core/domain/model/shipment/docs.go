// Package shipment models the delivery documents a courier consignment is
// created for. A Shipment mirrors the host system's stock movement record: the
// host owns it, this service only reads its destination, weight and company
// and writes the tracking number back once.
//
// Key business rules:
//   - Only outgoing shipments can be booked with a courier
//   - A shipment carries at most one tracking number; it is never replaced
package shipment
