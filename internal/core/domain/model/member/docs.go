// Package member models partner flower shops: signup, administrator review
// (approve or reject with a reason) and the districts and category prices a
// shop handles.
package member
