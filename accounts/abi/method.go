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

package abi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// FunctionType represents different types of functions a contract might have.
// Only constructors and plain functions are dispatched by the codec.
// FunctionType 表示合约中可能具有的不同函数类型。编解码器只分发构造函数和普通函数。
type FunctionType int

const (
	// Constructor represents the constructor of the contract.
	// The constructor function is called while deploying a contract.
	// Constructor 表示合约的构造函数，在部署合约时调用。
	Constructor FunctionType = iota
	// Function represents a normal function.
	// Function 表示普通函数。
	Function
)

// Method represents a callable given a `Name` and whether the method is a constant.
// If the method is `Const` no transaction needs to be created for this
// particular Method call. It can easily be simulated using a local VM.
// Inputs are used to build call data, outputs
// to decode what the call returns.
// Method 表示一个可调用的方法，包含名称以及该方法是否为常量。
// 如果方法是常量，则调用它时无需创建交易，可以在本地虚拟机中模拟执行。
// 输入描述用于构建调用数据，输出描述用于解码调用的返回值。
type Method struct {
	// Name is the method name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of a function overload.
	//
	// e.g.
	// These are two functions that have the same name:
	// * foo(int,int)
	// * foo(uint,uint)
	// The method name of the first one will be resolved as foo while the second one
	// will be resolved as foo0.
	// Name 是用于内部表示的方法名称。它源自原始名称，在函数重载时会添加后缀。
	// 例如 foo(int,int) 解析为 foo，foo(uint,uint) 解析为 foo0。
	Name    string
	RawName string // RawName is the raw method name parsed from ABI // 从 ABI 解析的原始方法名

	// Type indicates whether the method is a constructor or a normal function.
	// Type 表示方法是构造函数还是普通函数。
	Type FunctionType

	// Constant reports whether the method leaves the chain state untouched.
	// Constant 表示该方法是否不修改链上状态。
	Constant bool

	Inputs  Arguments
	Outputs Arguments
	str     string

	// Sig returns the methods string signature in canonical form.
	// e.g.		function foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	// Sig 返回方法的规范签名，例如 function foo(uint32 a, int b) = "foo(uint32,int256)"。
	// 注意 "int" 会被替换为其规范表示 "int256"。
	Sig string

	// ID returns the canonical representation of the method's signature used by the
	// abi definition to identify method names and types.
	// ID 是方法签名 Keccak256 哈希的前 4 个字节，即方法选择器。
	ID [4]byte
}

// NewMethod creates a new Method.
// A method should always be created using NewMethod.
// It also precomputes the sig representation and the string representation
// of the method.
// NewMethod 创建一个新的 Method，并预先计算其签名和字符串表示形式。
func NewMethod(name string, rawName string, funType FunctionType, constant bool, inputs Arguments, outputs Arguments) Method {
	var (
		sig string
		id  [4]byte
	)
	// 只有普通函数才有选择器，构造函数的参数直接附加在字节码之后。
	if funType == Function {
		sig = signature(rawName, inputs)
		copy(id[:], crypto.Keccak256([]byte(sig))[:4])
	}
	identity := fmt.Sprintf("function %v", rawName)
	if funType == Constructor {
		identity = "constructor"
	}
	str := fmt.Sprintf("%v(%v)", identity, describe(inputs))
	if constant {
		str += " view"
	}
	if len(outputs) > 0 {
		str += fmt.Sprintf(" returns(%v)", describe(outputs))
	}
	return Method{
		Name:     name,
		RawName:  rawName,
		Type:     funType,
		Constant: constant,
		Inputs:   inputs,
		Outputs:  outputs,
		str:      str,
		Sig:      sig,
		ID:       id,
	}
}

// Selector returns the method selector as 0x followed by 8 hex characters.
// Selector 返回以 0x 开头、后跟 8 个十六进制字符的方法选择器。
func (method Method) Selector() string {
	return hexutil.Encode(method.ID[:])
}

// String returns the human readable declaration of the method.
func (method Method) String() string {
	return method.str
}

// Selector derives the 4-byte selector of a canonical signature such as
// "transfer(address,uint256)".
// Selector 从规范签名（例如 "transfer(address,uint256)"）推导出 4 字节的选择器。
func Selector(sig string) [4]byte {
	var id [4]byte
	copy(id[:], crypto.Keccak256([]byte(sig))[:4])
	return id
}
