/*
Package main contains a command-line example for gxscope.

The example shows how to:
  - configure an oscilloscope connection from command-line flags
  - register scope callbacks (trace, state, error)
  - apply channel, timebase, voltage scale and trigger settings
  - acquire a waveform and print the first samples
*/
package main
