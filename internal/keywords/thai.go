package keywords

import (
	"fmt"
	"sync"
)

var (
	thaiOnce  sync.Once
	thaiTable *Table
)

// Thai returns the built-in Piyathon table. It is built once.
func Thai() *Table {
	thaiOnce.Do(func() {
		t, err := New("thai", map[Class]map[string]string{
			ClassKeyword: thaiKeywords,
			ClassBuiltin: thaiBuiltins,
			ClassDunder:  thaiDunders,
		}, []Combined{{Parts: [2]string{"else", "if"}, Keyword: "elif"}})
		if err != nil {
			panic(fmt.Errorf("built-in table: %w", err))
		}
		thaiTable = t
	})
	return thaiTable
}

var thaiKeywords = map[string]string{
	"and":      "และ",
	"as":       "เป็น",
	"assert":   "ยืนยัน",
	"async":    "ไม่ประสาน",
	"await":    "รอประสาน",
	"break":    "หยุด",
	"case":     "เมื่อ",
	"class":    "ชั้น",
	"continue": "ทำต่อ",
	"def":      "นิยาม",
	"del":      "ลบ",
	"elif":     "อื่นถ้า",
	"else":     "อื่น",
	"except":   "ยกเว้น",
	"False":    "เท็จ",
	"finally":  "สุดท้าย",
	"for":      "สำหรับ",
	"from":     "จาก",
	"global":   "ทั่วไป",
	"if":       "ถ้า",
	"import":   "นำเข้า",
	"in":       "ใน",
	"is":       "คือ",
	"lambda":   "แลมบ์ดา",
	"match":    "เทียบ",
	"nonlocal": "นอกเขต",
	"None":     "ไม่มีค่า",
	"not":      "ไม่",
	"or":       "หรือ",
	"pass":     "ผ่าน",
	"raise":    "ยก",
	"return":   "คืนค่า",
	"True":     "จริง",
	"try":      "ลอง",
	"while":    "ขณะ",
	"with":     "ด้วย",
	"yield":    "ให้",
}

var thaiBuiltins = map[string]string{
	"abs":          "ค่าสัมบูรณ์",
	"aiter":        "อิเทอเรเตอร์อะซิงค์",
	"all":          "ทั้งหมด",
	"anext":        "ถัดไปอะซิงค์",
	"any":          "ใดๆ",
	"ascii":        "แอสกี",
	"bin":          "ฐานสอง",
	"bool":         "บูลีน",
	"breakpoint":   "จุดพัก",
	"bytearray":    "แถวไบต์",
	"bytes":        "ไบต์",
	"callable":     "เรียกได้",
	"chr":          "อักขระ",
	"classmethod":  "เมธอดคลาส",
	"compile":      "คอมไพล์",
	"complex":      "จำนวนเชิงซ้อน",
	"delattr":      "ลบแอททริบิวต์",
	"dict":         "พจนานุกรม",
	"dir":          "ไดเรกทอรี",
	"divmod":       "หารเอาเศษ",
	"enumerate":    "ลำดับ",
	"eval":         "ประเมิน",
	"exec":         "ประมวลผล",
	"filter":       "กรอง",
	"float":        "ทศนิยม",
	"format":       "จัดรูปแบบ",
	"frozenset":    "เซ็ตแช่แข็ง",
	"getattr":      "รับแอททริบิวต์",
	"globals":      "ตัวแปรโกลบอล",
	"hasattr":      "มีแอททริบิวต์",
	"hash":         "แฮช",
	"help":         "ช่วยเหลือ",
	"hex":          "ฐานสิบหก",
	"id":           "รหัส",
	"input":        "รับค่า",
	"int":          "จำนวนเต็ม",
	"isinstance":   "เป็นชนิด",
	"issubclass":   "เป็นคลาสลูก",
	"iter":         "วนซ้ำ",
	"len":          "ความยาว",
	"list":         "รายการ",
	"locals":       "ตัวแปรท้องถิ่น",
	"map":          "แปลง",
	"max":          "ค่าสูงสุด",
	"memoryview":   "มุมมองหน่วยความจำ",
	"min":          "ค่าต่ำสุด",
	"next":         "ถัดไป",
	"object":       "วัตถุ",
	"oct":          "ฐานแปด",
	"open":         "เปิด",
	"ord":          "รหัสอักขระ",
	"pow":          "ยกกำลัง",
	"print":        "พิมพ์",
	"property":     "คุณสมบัติ",
	"range":        "ช่วง",
	"repr":         "ตัวแทน",
	"reversed":     "ย้อนกลับ",
	"round":        "ปัดเศษ",
	"set":          "เซ็ต",
	"setattr":      "ตั้งแอททริบิวต์",
	"slice":        "ตัดส่วน",
	"sorted":       "เรียงลำดับ",
	"staticmethod": "เมธอดคงที่",
	"str":          "สตริง",
	"sum":          "ผลรวม",
	"super":        "คลาสแม่",
	"tuple":        "ทูเพิล",
	"type":         "ชนิด",
	"vars":         "ตัวแปร",
	"zip":          "จับคู่",
	"__import__":   "__นำเข้า__",
}

var thaiDunders = map[string]string{
	"__name__":    "__ชื่อ__",
	"__doc__":     "__เอกสาร__",
	"__file__":    "__ไฟล์__",
	"__dict__":    "__พจนานุกรม__",
	"__package__": "__แพ็กเกจ__",
	"__path__":    "__เส้นทาง__",
	"__module__":  "__โมดูล__",
	"__bases__":   "__คลาสฐาน__",
	"__class__":   "__คลาส__",
	"__init__":    "__เริ่มต้น__",
	"__del__":     "__ลบ__",
	"__repr__":    "__ตัวแทนทางการ__",
	"__str__":     "__ตัวแทน__",
	"__bytes__":   "__ไบต์__",
	"__format__":  "__จัดรูปแบบ__",
	"__lt__":      "__น้อยกว่า__",
	"__le__":      "__น้อยกว่าเท่ากับ__",
	"__eq__":      "__เท่ากับ__",
	"__ne__":      "__ไม่เท่ากับ__",
	"__gt__":      "__มากกว่า__",
	"__ge__":      "__มากกว่าเท่ากับ__",
	"__hash__":    "__แฮช__",
	"__bool__":    "__บูลีน__",
	"__call__":    "__เรียกใช้__",
	"__len__":     "__ความยาว__",
	"__getitem__": "__เข้าถึงสมาชิก__",
	"__setitem__": "__กำหนดสมาชิก__",
	"__delitem__": "__ลบสมาชิก__",
	"__iter__":    "__วนซ้ำ__",
	"__next__":    "__ถัดไป__",
	"__enter__":   "__เข้า__",
	"__exit__":    "__ออก__",
	"__slots__":   "__ช่องเก็บ__",
	"__all__":     "__ทั้งหมด__",
}
