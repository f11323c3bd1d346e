// Package services holds domain logic that spans several aggregates or
// needs none of them to be mutated: currently the complaint report summary.
package services
