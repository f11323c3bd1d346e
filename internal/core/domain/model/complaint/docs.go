// Package complaint holds the customer complaint register: complaints
// reported through any sales channel, the products returned with them, and
// the status a complaint is in.
//
// Status changes are free-form. Staff move a complaint to any valid status
// from any other one; there is no workflow enforced here.
package complaint
