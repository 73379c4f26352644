// Command m68kdis disassembles a flat M68K binary image.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mseeger/go68k"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "m68kdis",
		Short: "Disassemble a flat MC68000/SCC68070 binary image",
	}

	var base string
	var start int
	var length int

	disasmCmd := &cobra.Command{
		Use:   "disasm [file]",
		Short: "Decode and print every instruction in a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseAddr, err := parseAddr(base)
			if err != nil {
				return fmt.Errorf("invalid --base: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if start < 0 || start > len(data) {
				return fmt.Errorf("--start %d is out of range for a %d-byte file", start, len(data))
			}
			data = data[start:]
			if length > 0 && length < len(data) {
				data = data[:length]
			}

			return disasm(data, baseAddr)
		},
	}
	disasmCmd.Flags().StringVar(&base, "base", "0", "load address of the first byte (hex with 0x prefix or decimal)")
	disasmCmd.Flags().IntVar(&start, "start", 0, "byte offset into the file to begin disassembling")
	disasmCmd.Flags().IntVar(&length, "length", 0, "number of bytes to disassemble (0 = to end of file)")

	rootCmd.AddCommand(disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// disasm walks buf one instruction at a time, printing address, raw
// opcode words, and rendered text. Undecodable words still advance by
// one word (via m68k.DisassembleBytes's dc.w fallback) so a stream with
// embedded data never stalls the walk.
func disasm(buf []byte, base uint32) error {
	for off := 0; off < len(buf); {
		addr := base + uint32(off)
		text, length := m68k.DisassembleBytes(buf[off:], addr)
		if length == 0 {
			length = 2
		}

		end := off + int(length)
		if end > len(buf) {
			end = len(buf)
		}
		fmt.Printf("%06X  %-14s %s\n", addr, hexWords(buf[off:end]), text)
		off = end
	}
	return nil
}

// hexWords renders the bytes of one instruction as space-separated
// 16-bit hex words, matching how 68000 disassembly listings show the
// raw opcode alongside its rendered mnemonic.
func hexWords(b []byte) string {
	var words []string
	for i := 0; i+1 < len(b); i += 2 {
		words = append(words, fmt.Sprintf("%02X%02X", b[i], b[i+1]))
	}
	if len(b)%2 == 1 {
		words = append(words, fmt.Sprintf("%02X", b[len(b)-1]))
	}
	return strings.Join(words, " ")
}

func parseAddr(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		return uint32(v), err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}
