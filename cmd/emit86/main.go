package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/arch/x86/x86asm"

	"github.com/grimoak/emit86/asm"
	"github.com/grimoak/emit86/codebuf"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emit86",
		Short: "x86-32 instruction emission demos",
		Long: `Small front-ends for the emit86 encoding engine: generate exact-length
NOP padding, or assemble a built-in sample routine and print a listing of
the emitted machine code.`,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		size int
		out  string
		base uint32
	)

	nopsCmd := &cobra.Command{
		Use:   "nops",
		Short: "Emit an exact-length NOP sled",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("invalid sled size %d", size)
			}
			buf := codebuf.New[asm.NoRef](0)
			a := asm.New[asm.NoRef](0, buf)
			a.Nop(size)

			if out == "" {
				fmt.Println(hexBytes(buf.Bytes()))
				return nil
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("writing sled: %w", err)
			}
			fmt.Printf("%d bytes written to %s\n", buf.Len(), out)
			return nil
		},
	}
	nopsCmd.Flags().IntVar(&size, "size", 32, "Total sled length in bytes")
	nopsCmd.Flags().StringVar(&out, "out", "", "Write raw bytes to this file instead of printing hex")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Assemble the sample routine and print a listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := sample(base)
			if err != nil {
				return err
			}
			fmt.Print(listing(buf.Start(), buf.Bytes()))
			return nil
		},
	}
	demoCmd.Flags().Uint32Var(&base, "base", 0x401000, "Location of the first emitted byte")

	rootCmd.AddCommand(nopsCmd, demoCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sample assembles a summation loop exercising both label resolution
// paths: a short backward branch and a long forward branch patched at
// bind time.
func sample(base uint32) (*codebuf.Buffer[asm.NoRef], error) {
	buf := codebuf.New[asm.NoRef](base)
	a := asm.New[asm.NoRef](base, buf)

	var body, done asm.Label[asm.NoRef]

	a.PushReg(asm.EBP)
	a.MovRegReg(asm.EBP, asm.ESP)
	a.MovRegImm(asm.ECX, asm.Imm[asm.NoRef](8, asm.Size32))
	a.XorRegReg(asm.EAX, asm.EAX)
	if err := a.Bind(&body); err != nil {
		return nil, err
	}
	a.AddRegOp(asm.EAX, asm.MemIdx(asm.EBP, asm.ECX, asm.Scale4, asm.Disp[asm.NoRef](-4)))
	a.SubRegImm(asm.ECX, asm.Imm[asm.NoRef](1, asm.Size32))
	if err := a.J(asm.Zero, &done); err != nil {
		return nil, err
	}
	if err := a.JReach(asm.NotZero, &body, asm.Size8); err != nil {
		return nil, err
	}
	if err := a.Bind(&done); err != nil {
		return nil, err
	}
	a.PopReg(asm.EBP)
	a.Ret()
	return buf, nil
}

// listing renders an address / bytes / mnemonic view of the stream.
func listing(base uint32, code []byte) string {
	var sb strings.Builder
	offset := 0
	for offset < len(code) {
		inst, err := x86asm.Decode(code[offset:], 32)
		if err != nil {
			sb.WriteString(fmt.Sprintf("%#08x: db %#02x\n", base+uint32(offset), code[offset]))
			offset++
			continue
		}
		sb.WriteString(fmt.Sprintf(
			"%#08x: %-24s %s\n",
			base+uint32(offset),
			hexBytes(code[offset:offset+inst.Len]),
			strings.ToLower(inst.String()),
		))
		offset += inst.Len
	}
	return sb.String()
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}
