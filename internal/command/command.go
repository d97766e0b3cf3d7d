package command

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/treeforest/easyb58/base58"
	"github.com/treeforest/easyb58/base58check"
	"github.com/treeforest/easyb58/config"
	"github.com/treeforest/easyb58/pkg/digest"
	"github.com/treeforest/easyb58/pkg/ids"
	log "github.com/treeforest/logger"
)

const Version = "0.1.0"

type Command struct {
	width  int // 默认字节宽度
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func NewCommand(conf *config.Config, in io.Reader, out, errOut io.Writer) *Command {
	return &Command{width: conf.Width, in: in, out: out, errOut: errOut}
}

func (c *Command) printUsage() {
	fmt.Fprintln(c.errOut, "Usage:")
	fmt.Fprintf(c.errOut, "\tencode -hex HEX -- 编码 16/32/64 字节的十六进制数据\n")
	fmt.Fprintf(c.errOut, "\tdecode [-w WIDTH] TEXT -- 解码为十六进制\n")
	fmt.Fprintf(c.errOut, "\t\t-w -- 字节宽度 (默认 %d)\n", c.width)
	fmt.Fprintf(c.errOut, "\tparse [-w WIDTH] TEXT -- 校验并补齐文本\n")
	fmt.Fprintf(c.errOut, "\tcheck [-w WIDTH] TEXT -- 校验带校验和的文本\n")
	fmt.Fprintf(c.errOut, "\tuuid [-n N] -- 生成 UUID 及其 base58 编码\n")
	fmt.Fprintf(c.errOut, "\tdigest [-w 32|64] FILE -- BLAKE2b 摘要, FILE 为 - 时读取标准输入\n")
	fmt.Fprintf(c.errOut, "\tversion -- 输出版本\n")
}

// Run executes the sub-command named by args[0] and returns the exit
// status: 0 on success, 1 when the command fails and 2 on a usage error.
func (c *Command) Run(args []string) int {
	cmdEncode := flag.NewFlagSet("encode", flag.ContinueOnError)
	argHex := cmdEncode.String("hex", "", "十六进制数据")
	cmdDecode := flag.NewFlagSet("decode", flag.ContinueOnError)
	argDecodeWidth := cmdDecode.Int("w", c.width, "字节宽度")
	cmdParse := flag.NewFlagSet("parse", flag.ContinueOnError)
	argParseWidth := cmdParse.Int("w", c.width, "字节宽度")
	cmdCheck := flag.NewFlagSet("check", flag.ContinueOnError)
	argCheckWidth := cmdCheck.Int("w", c.width, "字节宽度")
	cmdUUID := flag.NewFlagSet("uuid", flag.ContinueOnError)
	argUUIDNum := cmdUUID.Int("n", 1, "生成个数")
	cmdDigest := flag.NewFlagSet("digest", flag.ContinueOnError)
	argDigestWidth := cmdDigest.Int("w", 32, "摘要字节宽度")
	cmdVersion := flag.NewFlagSet("version", flag.ContinueOnError)

	var err error
	if len(args) < 1 {
		goto HELP
	}

	switch args[0] {
	case "encode":
		if !c.parseCommand(cmdEncode, args[1:]) || *argHex == "" {
			goto HELP
		}
		err = c.encode(*argHex)
	case "decode":
		if !c.parseCommand(cmdDecode, args[1:]) || cmdDecode.NArg() != 1 {
			goto HELP
		}
		err = c.decode(*argDecodeWidth, cmdDecode.Arg(0))
	case "parse":
		if !c.parseCommand(cmdParse, args[1:]) || cmdParse.NArg() != 1 {
			goto HELP
		}
		err = c.parse(*argParseWidth, cmdParse.Arg(0))
	case "check":
		if !c.parseCommand(cmdCheck, args[1:]) || cmdCheck.NArg() != 1 {
			goto HELP
		}
		err = c.check(*argCheckWidth, cmdCheck.Arg(0))
	case "uuid":
		if !c.parseCommand(cmdUUID, args[1:]) || *argUUIDNum < 1 {
			goto HELP
		}
		c.uuid(*argUUIDNum)
	case "digest":
		if !c.parseCommand(cmdDigest, args[1:]) || cmdDigest.NArg() != 1 {
			goto HELP
		}
		err = c.digest(*argDigestWidth, cmdDigest.Arg(0))
	case "version":
		if !c.parseCommand(cmdVersion, args[1:]) {
			goto HELP
		}
		fmt.Fprintln(c.out, Version)
	default:
		goto HELP
	}

	if err != nil {
		log.Debugf("%s: %+v", args[0], err)
		fmt.Fprintf(c.errOut, "%s: %v\n", args[0], err)
		return 1
	}
	return 0

HELP:
	c.printUsage()
	return 2
}

func (c *Command) parseCommand(cmd *flag.FlagSet, args []string) bool {
	cmd.SetOutput(c.errOut)
	return cmd.Parse(args) == nil
}

func (c *Command) encode(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return errors.Wrap(err, "hex")
	}
	text, err := base58.EncodeToString(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, text)
	return nil
}

func (c *Command) decode(width int, text string) error {
	b, err := base58.DecodeString(width, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, hex.EncodeToString(b))
	return nil
}

func (c *Command) parse(width int, text string) error {
	s, err := base58.ParseString(width, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, s)
	return nil
}

func (c *Command) check(width int, text string) error {
	if !base58check.Valid(width, text) {
		return errors.Errorf("%q is not a checked %d-byte value", text, width)
	}
	fmt.Fprintln(c.out, "ok")
	return nil
}

func (c *Command) uuid(n int) {
	for i := 0; i < n; i++ {
		id, text := ids.New()
		fmt.Fprintf(c.out, "%s %s\n", id, text)
	}
}

func (c *Command) digest(width int, path string) error {
	var (
		text string
		err  error
	)
	if path == "-" {
		text, err = digest.Reader(c.in, width)
	} else {
		text, err = digest.File(path, width)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s  %s\n", text, path)
	return nil
}

// Main runs the command line with the process arguments and exits.
func Main(conf *config.Config) {
	os.Exit(NewCommand(conf, os.Stdin, os.Stdout, os.Stderr).Run(os.Args[1:]))
}
