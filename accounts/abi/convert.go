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
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// decodeHex parses a 0x-prefixed hex string. Odd length input is left padded
// with a zero nibble.
// decodeHex 解析带 0x 前缀的十六进制字符串。奇数长度的输入会在左侧补一个 0。
func decodeHex(s string) ([]byte, error) {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return nil, fmt.Errorf("%w: %q lacks 0x prefix", ErrInvalidHex, s)
	}
	body := s[2:]
	if len(body)%2 == 1 {
		body = "0" + body
	}
	b, err := hexutil.Decode("0x" + body)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return b, nil
}

// toBytes converts the byte-like Go values accepted by bytes and bytesN.
// toBytes 转换 bytes 和 bytesN 接受的类字节 Go 值。
func toBytes(v interface{}) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case hexutil.Bytes:
		return b, nil
	case string:
		return decodeHex(b)
	case common.Hash:
		return b[:], nil
	}
	// Arbitrary byte arrays, e.g. [4]byte or [32]byte.
	// 任意字节数组，例如 [4]byte 或 [32]byte。
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(out), rv)
		return out, nil
	}
	return nil, typeErr("bytes", reflect.TypeOf(v))
}

// toAddress converts the Go values accepted by the address type.
// toAddress 转换 address 类型接受的 Go 值。
func toAddress(v interface{}) (common.Address, error) {
	switch a := v.(type) {
	case common.Address:
		return a, nil
	case *common.Address:
		if a == nil {
			return common.Address{}, typeErr("address", "nil")
		}
		return *a, nil
	case string:
		if len(a) != 2+2*common.AddressLength {
			return common.Address{}, fmt.Errorf("%w: %q is not a 20 byte hex value", ErrInvalidHex, a)
		}
		b, err := decodeHex(a)
		if err != nil {
			return common.Address{}, err
		}
		return common.BytesToAddress(b), nil
	}
	b, err := toBytes(v)
	if err != nil {
		return common.Address{}, typeErr("address", reflect.TypeOf(v))
	}
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: address has %d bytes", ErrRange, len(b))
	}
	return common.BytesToAddress(b), nil
}

// toBig converts any integer-like value to a big integer. Fractional parts of
// floats and decimal strings are truncated toward zero.
// toBig 将任意类整数值转换为大整数。浮点数和十进制字符串的小数部分向零截断。
func toBig(v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, typeErr("integer", "nil")
		}
		return n, nil
	case big.Int:
		return &n, nil
	case *uint256.Int:
		if n == nil {
			return nil, typeErr("integer", "nil")
		}
		return n.ToBig(), nil
	case uint256.Int:
		return n.ToBig(), nil
	case *hexutil.Big:
		if n == nil {
			return nil, typeErr("integer", "nil")
		}
		return (*big.Int)(n), nil
	case float64:
		return parseNumber(strconv.FormatFloat(n, 'f', -1, 64))
	case float32:
		return parseNumber(strconv.FormatFloat(float64(n), 'f', -1, 32))
	case json.Number:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, typeErr("integer", "nil")
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	}
	return nil, typeErr("integer", rv.Type())
}

// parseNumber accepts decimal and 0x-prefixed hex integers with an optional
// leading minus sign. A decimal fraction is dropped.
// parseNumber 接受十进制和带 0x 前缀的十六进制整数，可带前导负号。十进制的小数部分会被丢弃。
func parseNumber(s string) (*big.Int, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}
	// A single leading minus is the only sign accepted.
	// 只接受一个前导负号作为符号。
	if digits := strings.TrimPrefix(str, "0x"); strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
	}
	var (
		n  = new(big.Int)
		ok bool
	)
	if strings.HasPrefix(str, "0x") {
		_, ok = n.SetString(str[2:], 16)
	} else {
		if i := strings.IndexByte(str, '.'); i >= 0 {
			str = str[:i]
		}
		if str == "" {
			str = "0"
		}
		_, ok = n.SetString(str, 10)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}
