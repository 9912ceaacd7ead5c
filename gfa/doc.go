/*
Package gfa filters the link records of an assembly graph in the Graphical
Fragment Assembly format.

Only `L` records are interpreted, and only their two segment fields. Every
other record type is passed through with trailing whitespace removed. A link
is dropped when it is a self-loop or when a link between the same two
segments has already been seen, regardless of orientation or the order in
which the segments are listed.
*/
package gfa
