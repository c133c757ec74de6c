/*
Package seqsim provides a small synchronous logic simulator, using Go as a
poor man's [hdl].

Parts (gates, registers, whole chips) are blueprints described by a
PartSpec; mounting a part into a Circuit turns it into update closures
driven once per simulation step. A built-in clock signal paces the
simulation: Tick and Tock advance it by half clock cycles, and clocked
parts sample their inputs on the rising edge (see Circuit.AtTick).

The repository uses this substrate to model the classic "1011" sequence
detector exercise in both its Mealy and Moore renditions; see the detect
package.

[hdl]: https://en.wikipedia.org/wiki/Hardware_description_language
*/
package seqsim
