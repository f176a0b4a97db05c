package herbal

var leaves = []Info{
	{
		Name:        "Daun Jambu Biji",
		Description: "Daun dari pohon jambu biji (Psidium guajava) yang dikenal luas karena khasiat obatnya, terutama untuk mengatasi masalah pencernaan.",
		Benefits:    []string{"Membantu mengatasi diare", "Menurunkan kolesterol", "Baik untuk penderita diabetes", "Kaya akan antioksidan"},
	},
	{
		Name:        "Daun Kari",
		Description: "Daun dari pohon kari (Murraya koenigii) yang sering digunakan sebagai bumbu masak dan memiliki aroma yang khas serta kuat.",
		Benefits:    []string{"Baik untuk kesehatan rambut", "Membantu menurunkan berat badan", "Mengontrol kadar gula darah", "Meningkatkan kesehatan mata"},
	},
	{
		Name:        "Daun Kemangi",
		Description: "Dikenal juga sebagai basil, daun ini memiliki aroma wangi yang khas dan sering dijadikan lalapan atau bumbu masakan.",
		Benefits:    []string{"Sebagai antiseptik alami", "Menjaga kesehatan jantung", "Mengurangi stres oksidatif", "Meningkatkan sistem kekebalan tubuh"},
	},
	{
		Name:        "Daun Mint",
		Description: "Daun dari genus Mentha ini memberikan sensasi dingin dan segar, sering digunakan dalam minuman, makanan, dan produk kesehatan.",
		Benefits:    []string{"Meredakan gangguan pencernaan", "Menyegarkan napas", "Membantu meredakan sakit kepala", "Meningkatkan fungsi otak"},
	},
	{
		Name:        "Daun Pepaya",
		Description: "Daun dari pohon pepaya (Carica papaya) yang memiliki rasa pahit namun kaya akan enzim dan nutrisi penting.",
		Benefits:    []string{"Meningkatkan trombosit (membantu penderita DBD)", "Sebagai anti-malaria", "Melancarkan pencernaan", "Memiliki sifat anti-kanker"},
	},
	{
		Name:        "Daun Sirih",
		Description: "Tanaman merambat yang daunnya memiliki nilai budaya dan kesehatan tinggi di Asia Tenggara, terkenal sebagai antiseptik.",
		Benefits:    []string{"Sebagai antiseptik alami", "Menjaga kesehatan mulut dan gigi", "Mengatasi mimisan", "Membantu menyembuhkan luka"},
	},
	{
		Name:        "Daun Sirsak",
		Description: "Daun dari pohon sirsak (Annona muricata) yang dipercaya memiliki banyak khasiat untuk pengobatan, termasuk kanker.",
		Benefits:    []string{"Berpotensi sebagai anti-kanker", "Membantu menurunkan asam urat", "Mengatasi rematik", "Meningkatkan kualitas tidur"},
	},
	{
		Name:        "Lidah Buaya",
		Description: "Dikenal sebagai Aloe vera, tanaman sukulen ini memiliki gel di dalam daunnya yang kaya manfaat untuk kulit dan kesehatan.",
		Benefits:    []string{"Melembapkan dan menyehatkan kulit", "Mempercepat penyembuhan luka bakar", "Membantu mengatasi sembelit", "Menurunkan kadar gula darah"},
	},
	{
		Name:        "Teh Hijau",
		Description: "Daun dari tanaman Camellia sinensis yang diproses minimal, kaya akan antioksidan, dan menjadi salah satu minuman tersehat di dunia.",
		Benefits:    []string{"Kaya akan antioksidan (polifenol)", "Meningkatkan metabolisme tubuh", "Meningkatkan fungsi otak", "Mengurangi risiko penyakit jantung"},
	},
}
