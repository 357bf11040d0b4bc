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

package abigen

// tmplData is the data structure required to fill the binding template.
// tmplData 是填充绑定模板所需的数据结构。
type tmplData struct {
	Package  string        // Name of the package to place the generated file in // 生成文件所在的包名
	Contract *tmplContract // Contract to generate into this file // 要生成到此文件中的合约
}

// tmplContract contains the data needed to generate an individual contract binding.
// tmplContract 包含生成单个合约绑定所需的数据。
type tmplContract struct {
	Type        string        // Type name of the main contract binding // 主合约绑定的类型名称
	InputABI    string        // JSON ABI used as the input to generate the binding from // 用于生成绑定的 JSON ABI
	Constructor []*tmplArg    // Constructor arguments of the deployer // 部署函数的构造参数
	Calls       []*tmplMethod // Contract calls that only read state data // 只读取状态数据的合约调用
	Transacts   []*tmplMethod // Contract calls that write state data // 写入状态数据的合约调用
	Events      []*tmplEvent  // Contract events accessors // 合约事件访问器
}

// tmplMethod is a wrapper around an abi.Method that contains a few preprocessed
// and cached data fields.
// tmplMethod 是 abi.Method 的包装，包含一些预处理和缓存的数据字段。
type tmplMethod struct {
	Name     string // Method name in the interface // 接口中的方法名
	GoName   string // Exported Go name // 导出的 Go 名称
	Sig      string
	Selector string
	Inputs   []*tmplArg
}

// tmplEvent is a wrapper around an abi.Event that contains a few preprocessed
// and cached data fields.
// tmplEvent 是 abi.Event 的包装。
type tmplEvent struct {
	Name    string
	GoName  string
	Sig     string
	Indexed []*tmplArg // Indexed inputs usable as filter rules // 可用作过滤规则的索引参数
}

// tmplArg is a method or event argument with its Go name and type.
type tmplArg struct {
	Name string
	Type string
}

// tmplSource is the Go source template that the generated Go contract binding
// is based on.
// tmplSource 是生成的 Go 合约绑定所基于的 Go 源代码模板。
const tmplSource = `// Code generated by abicodec bindgen - DO NOT EDIT.
// This file is a generated binding and any manual changes will be lost.

package {{.Package}}

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	irc "github.com/irchain/go-irc"
	"github.com/irchain/go-irc/accounts/abi"
	"github.com/irchain/go-irc/accounts/abi/bind"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = big.NewInt
	_ = strings.NewReader
)
{{$c := .Contract}}
// {{$c.Type}}ABI is the input ABI used to generate the binding from.
const {{$c.Type}}ABI = ` + "`{{$c.InputABI}}`" + `

// {{$c.Type}} is a binding around a deployed contract.
type {{$c.Type}} struct {
	contract *bind.Contract
}

// New{{$c.Type}} creates a new instance of {{$c.Type}}, bound to a specific deployed contract.
func New{{$c.Type}}(address common.Address, backend irc.ContractBackend) (*{{$c.Type}}, error) {
	parsed, err := abi.JSON(strings.NewReader({{$c.Type}}ABI))
	if err != nil {
		return nil, err
	}
	return &{{$c.Type}}{contract: bind.NewContract(address, parsed, backend)}, nil
}

// Deploy{{$c.Type}} deploys a new contract, binding an instance of {{$c.Type}} to it.
func Deploy{{$c.Type}}(opts *bind.TransactOpts, bytecode []byte, backend irc.TransactionSender{{range $c.Constructor}}, {{.Name}} {{.Type}}{{end}}) (common.Hash, error) {
	parsed, err := abi.JSON(strings.NewReader({{$c.Type}}ABI))
	if err != nil {
		return common.Hash{}, err
	}
	return bind.DeployContract(opts, parsed, bytecode, backend{{range $c.Constructor}}, {{.Name}}{{end}})
}
{{range $c.Calls}}
// {{.GoName}} is a free data retrieval call binding the contract method {{.Selector}}.
//
// Signature: {{.Sig}}
func (_{{$c.Type}} *{{$c.Type}}) {{.GoName}}(opts *bind.CallOpts{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) (abi.Values, error) {
	return _{{$c.Type}}.contract.Call(opts, "{{.Name}}"{{range .Inputs}}, {{.Name}}{{end}})
}
{{end}}
{{range $c.Transacts}}
// {{.GoName}} is a paid mutator transaction binding the contract method {{.Selector}}.
//
// Signature: {{.Sig}}
func (_{{$c.Type}} *{{$c.Type}}) {{.GoName}}(opts *bind.TransactOpts{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) (common.Hash, error) {
	return _{{$c.Type}}.contract.Transact(opts, "{{.Name}}"{{range .Inputs}}, {{.Name}}{{end}})
}
{{end}}
{{range $c.Events}}
// Filter{{.GoName}} is a free log retrieval operation binding the contract event {{.Sig}}.
func (_{{$c.Type}} *{{$c.Type}}) Filter{{.GoName}}(opts *bind.FilterOpts{{range .Indexed}}, {{.Name}} []{{.Type}}{{end}}) ([]*abi.EventRecord, error) {
	{{range .Indexed}}
	var {{.Name}}Rule []interface{}
	for _, {{.Name}}Item := range {{.Name}} {
		{{.Name}}Rule = append({{.Name}}Rule, {{.Name}}Item)
	}
	{{end}}
	return _{{$c.Type}}.contract.FilterLogs(opts, "{{.Name}}"{{range .Indexed}}, {{.Name}}Rule{{end}})
}
{{end}}
`
