// Package consignment describes a GDEX courier booking: the credentials and
// endpoint it is sent with, the parcel descriptor built from a shipment, and
// the failures a booking attempt can end with.
//
// Defaults applied to every parcel (the carrier requires them, the host does
// not record them): one piece of "Goods", declared value 0, 20x15x10
// dimensions, not dangerous goods.
package consignment
