/*
Package tools provides command line tools for working with the assembly
graphs produced by minimizer-space de Bruijn graph assemblers.

In most cases, command line tools are typically very small and only
representative of an interface to interact with a library package in this
repository. The tools are:

	gfa-break-loops    remove self-loop and duplicate links from a GFA file
*/
package tools
