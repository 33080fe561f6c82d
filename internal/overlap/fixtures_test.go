package overlap

const (
	essayPhotosynthesis = "Photosynthesis converts light energy into chemical energy inside the chloroplasts of plant cells. " +
		"The light dependent reactions split water molecules and release oxygen as a byproduct. " +
		"Glucose produced during the Calvin cycle fuels growth and cellular respiration."

	essayPhotosynthesisCopied = "Photosynthesis converts light energy into chemical energy inside the chloroplasts of plant cells. " +
		"Plants need sunlight, water and carbon dioxide to survive in most environments. " +
		"Glucose produced during the Calvin cycle fuels growth and cellular respiration."

	essayRomanRoads = "Roman engineers built roads with layered gravel foundations and drainage ditches. " +
		"Legions marched quickly across provinces because milestones marked every mile travelled. " +
		"Many modern European highways still follow those ancient imperial routes."
)
