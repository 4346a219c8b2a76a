package emit

import (
	"bufio"
	"fmt"
	"io"
)

const verilogHeader = "////////////////////////////////////////////////////////////////////////////////\n" +
	"// Arctan lookup table for a CORDIC rotation unit.\n" +
	"// Generated by cordicgen. Do not edit by hand.\n" +
	"////////////////////////////////////////////////////////////////////////////////\n" +
	"`default_nettype none\n" +
	"\n" +
	"module arctan_lookup #(\n" +
	"    parameter N = %d,\n" +
	"    parameter I = %d\n" +
	") (\n" +
	"    input  wire                 clk,\n" +
	"    input  wire                 rst_n,\n" +
	"    input  wire [$clog2(I)-1:0] j,\n" +
	"    output reg  [N-1:0]         arctan\n" +
	");\n" +
	"\n" +
	"    reg [N-1:0] lookup_table[0:I-1];\n" +
	"\n" +
	"    always @(posedge clk) begin\n" +
	"        if (~rst_n) begin\n"

const verilogFooter = "        end\n" +
	"    end\n" +
	"\n" +
	"    always @(posedge clk) begin\n" +
	"        arctan <= lookup_table[j];\n" +
	"    end\n" +
	"\n" +
	"endmodule\n"

// Verilog renders a synthesizable lookup-table module around the encoded
// words. totalBits is the significant word width (the module's N parameter)
// and len(words) the table depth I. The table loads while rst_n is held low
// and the entry selected by j appears on arctan one clock later. Port names
// and process ordering are a fixed contract with the surrounding RTL.
func Verilog(w io.Writer, words []uint32, totalBits int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, verilogHeader, totalBits, len(words))
	for i, word := range words {
		fmt.Fprintf(bw, "            lookup_table[%d] <= 32'h%08X;\n", i, word)
	}
	fmt.Fprint(bw, verilogFooter)
	return bw.Flush()
}
