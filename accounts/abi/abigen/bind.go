// Copyright 2025 The go-irc Authors
// This file is part of the go-irc library.
//
// The go-irc library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-irc library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-irc library. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2025 The go-irc Authors
// 此文件是 go-irc 库的一部分。
//
// go-irc 库是免费软件：您可以根据自由软件基金会发布的 GNU 宽通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// go-irc 库的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 宽通用公共许可证。
//
// 您应该已经随 go-irc 库收到一份 GNU 宽通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

// Package abigen generates Go wrappers around bind.Contract from a contract
// interface definition.
// Package abigen 根据合约接口定义生成基于 bind.Contract 的 Go 封装代码。
package abigen

import (
	"bytes"
	"fmt"
	"go/format"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/ethereum/go-ethereum/log"
	"github.com/irchain/go-irc/accounts/abi"
)

var (
	intRegex = regexp.MustCompile(`(u)?int([0-9]*)`)
)

// isKeyWord reports whether arg is a Go keyword or predeclared name that cannot
// be used as a parameter name.
// isKeyWord 判断 arg 是否为不能用作参数名的 Go 关键字或预声明名称。
func isKeyWord(arg string) bool {
	switch arg {
	case "break":
	case "case":
	case "chan":
	case "const":
	case "continue":
	case "default":
	case "defer":
	case "else":
	case "fallthrough":
	case "for":
	case "func":
	case "go":
	case "goto":
	case "if":
	case "import":
	case "interface":
	case "iota":
	case "map":
	case "make":
	case "new":
	case "package":
	case "range":
	case "return":
	case "select":
	case "struct":
	case "switch":
	case "type":
	case "var":
	case "opts", "common", "abi", "bind", "big", "irc", "strings":
	case "address", "backend", "bytecode", "parsed", "err":
	default:
		return false
	}
	return true
}

// Bind generates a Go wrapper around the contract interface abiJSON. The type
// is named typ and placed in package pkg.
// Bind 为合约接口 abiJSON 生成 Go 封装代码，类型名为 typ，位于 pkg 包中。
func Bind(typ string, abiJSON string, pkg string) (string, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return "", err
	}
	contract := &tmplContract{
		Type:        abi.ToCamelCase(typ),
		InputABI:    strings.TrimSpace(abiJSON),
		Constructor: bindArgs(parsed.Constructor.Inputs),
	}
	for _, name := range sortedKeys(parsed.Methods) {
		original := parsed.Methods[name]
		method := &tmplMethod{
			Name:     name,
			GoName:   abi.ToCamelCase(name),
			Sig:      original.Sig,
			Selector: original.Selector(),
			Inputs:   bindArgs(original.Inputs),
		}
		if original.Constant {
			contract.Calls = append(contract.Calls, method)
		} else {
			contract.Transacts = append(contract.Transacts, method)
		}
	}
	for _, name := range sortedKeys(parsed.Events) {
		original := parsed.Events[name]
		event := &tmplEvent{
			Name:   name,
			GoName: abi.ToCamelCase(name),
			Sig:    original.Sig,
		}
		for _, input := range original.Inputs {
			if input.Indexed {
				event.Indexed = append(event.Indexed, bindArg(input, len(event.Indexed)))
			}
		}
		contract.Events = append(contract.Events, event)
	}
	data := &tmplData{
		Package:  pkg,
		Contract: contract,
	}
	buffer := new(bytes.Buffer)
	tmpl := template.Must(template.New("").Parse(tmplSource))
	if err := tmpl.Execute(buffer, data); err != nil {
		return "", err
	}
	code, err := format.Source(buffer.Bytes())
	if err != nil {
		return "", fmt.Errorf("%v\n%s", err, buffer)
	}
	log.Debug("Generated contract binding", "type", contract.Type, "calls", len(contract.Calls), "transacts", len(contract.Transacts), "events", len(contract.Events))
	return string(code), nil
}

// bindArgs names and types the arguments of a method for the template.
func bindArgs(args abi.Arguments) []*tmplArg {
	bound := make([]*tmplArg, len(args))
	for i, arg := range args {
		bound[i] = bindArg(arg, i)
	}
	return bound
}

func bindArg(arg abi.Argument, i int) *tmplArg {
	name := decapitalise(arg.Name)
	if name == "" || isKeyWord(name) {
		name = fmt.Sprintf("arg%d", i)
	}
	return &tmplArg{Name: name, Type: bindType(arg.Type)}
}

// bindBasicType converts basic solidity types(except array, slice and tuple) to Go ones.
// bindBasicType 将基本的合约类型（数组和切片除外）转换为 Go 类型。
func bindBasicType(kind abi.Type) string {
	switch kind.T {
	case abi.AddressTy:
		return "common.Address"
	case abi.IntTy, abi.UintTy:
		parts := intRegex.FindStringSubmatch(kind.String())
		switch parts[2] {
		case "8", "16", "32", "64": // 对于 8, 16, 32, 64 位的整数，直接映射
			return fmt.Sprintf("%sint%s", parts[1], parts[2])
		}
		return "*big.Int" // 其他大小的整数映射为 *big.Int
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", kind.Size)
	case abi.BytesTy:
		return "[]byte"
	default:
		return kind.String()
	}
}

// bindType converts solidity types to Go ones.
// bindType 将合约类型转换为 Go 类型。
func bindType(kind abi.Type) string {
	switch kind.T {
	case abi.ArrayTy:
		return fmt.Sprintf("[%d]", kind.Size) + bindType(*kind.Elem)
	case abi.SliceTy:
		return "[]" + bindType(*kind.Elem)
	default:
		return bindBasicType(kind)
	}
}

// decapitalise makes a camel-case string which starts with a lower case character.
// decapitalise 生成以小写字母开头的驼峰式字符串。
func decapitalise(input string) string {
	if len(input) == 0 {
		return input
	}
	goForm := abi.ToCamelCase(input)
	return strings.ToLower(goForm[:1]) + goForm[1:]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
